package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/sasusim/remuneration-simulator/internal/domain"
)

// Render formats results with the named formatter and writes them to w.
func Render(w io.Writer, format string, results *domain.ScenarioComparison, assumptions []string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	if verbose, ok := f.(ConsoleVerboseFormatter); ok {
		verbose.Assumptions = assumptions
		f = verbose
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// RenderOptimization writes a salary sweep with the named formatter.
func RenderOptimization(w io.Writer, format string, result *domain.OptimizationResult) error {
	f, ok := GetFormatterByName(format).(OptimizationFormatter)
	if !ok {
		return unsupported(format)
	}
	data, err := f.FormatOptimization(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// unsupported enriches the error with available formatters and aliases.
func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
