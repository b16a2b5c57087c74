// Package main provides the entry point for the vacancystats CLI.
//
// vacancystats compares programming languages by the number of vacancies and
// the average advertised salary on hh.ru and superjob.ru.
//
// Usage:
//
//	vacancystats
//	vacancystats --source headhunter --languages Go,Rust --format markdown
//
// See --help for all available options.
package main

func main() {
	Execute()
}
