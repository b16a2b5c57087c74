package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/vacancystats/internal/utils"
)

const bannerText = `
██╗   ██╗ █████╗  ██████╗ █████╗ ███╗   ██╗ ██████╗██╗   ██╗    ███████╗████████╗ █████╗ ████████╗███████╗
██║   ██║██╔══██╗██╔════╝██╔══██╗████╗  ██║██╔════╝╚██╗ ██╔╝    ██╔════╝╚══██╔══╝██╔══██╗╚══██╔══╝██╔════╝
██║   ██║███████║██║     ███████║██╔██╗ ██║██║      ╚████╔╝     ███████╗   ██║   ███████║   ██║   ███████╗
╚██╗ ██╔╝██╔══██║██║     ██╔══██║██║╚██╗██║██║       ╚██╔╝      ╚════██║   ██║   ██╔══██║   ██║   ╚════██║
 ╚████╔╝ ██║  ██║╚██████╗██║  ██║██║ ╚████║╚██████╗   ██║       ███████║   ██║   ██║  ██║   ██║   ███████║
  ╚═══╝  ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝   ╚═╝       ╚══════╝   ╚═╝   ╚═╝  ╚═╝   ╚═╝   ╚══════╝
`

// Salary bands, in roubles per month.
const (
	highSalary   = 300000
	goodSalary   = 200000
	medianSalary = 100000
)

// ColorizeText applies a random colour fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	half := max(len(chars)/2, 1)

	var b strings.Builder
	for i, ch := range chars {
		b.WriteString(startColor.Fade(0, float32(len(chars)), float32(i%half), firstPoint).Sprint(ch))
	}
	return b.String()
}

// PrintBanner writes the application banner to w unless silenced.
func PrintBanner(w io.Writer, silence bool) {
	if silence {
		return
	}
	fmt.Fprintln(w, ColorizeText(bannerText))
}

// ColorizeSalary formats an average salary and colours it by band.
func ColorizeSalary(salary *int) string {
	formatted := utils.FormatSalary(salary)
	if salary == nil {
		return pterm.Gray(formatted)
	}

	switch {
	case *salary >= highSalary:
		return pterm.Green(formatted)
	case *salary >= goodSalary:
		return pterm.LightGreen(formatted)
	case *salary >= medianSalary:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
