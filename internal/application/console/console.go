package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"

	"go.uber.org/zap"
)

const quitKeyword = "quit"

// Console is the interactive adapter: it reads comma separated city names
// from its input stream and writes weather reports to its output stream.
type Console struct {
	in      io.Reader
	out     io.Writer
	useCase weather.UseCase
}

func NewConsole(in io.Reader, out io.Writer, useCase weather.UseCase) *Console {
	return &Console{
		in:      in,
		out:     out,
		useCase: useCase,
	}
}

// Run prompts for city lists until the quit keyword or end of input. It
// returns the reader's error when input fails mid-session, nil on a clean exit.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "Enter city names (separated by commas) or 'quit' to exit.")

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "Cities: ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out, "Exiting...")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, quitKeyword) {
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		}

		c.processLine(line)
	}
}

// processLine dispatches every city on one input line, recovering per city so
// one failed lookup never aborts the rest of the line.
func (c *Console) processLine(line string) {
	cities := parseCities(line)
	if len(cities) == 0 {
		return
	}

	requestID := uuid.New().String()
	log.Info("Processing input line",
		zap.String("request_id", requestID),
		zap.Int("cities", len(cities)))

	for _, city := range cities {
		fmt.Fprintf(c.out, "\nFetching weather for %s...\n", city)

		report, err := c.useCase.LookupCity(requestID, city)
		if err != nil {
			c.renderError(city, err)
			continue
		}

		c.renderReport(city, report)
	}
}

// parseCities splits a comma separated line into trimmed city names,
// discarding empty entries.
func parseCities(line string) []string {
	fields := strings.Split(line, ",")
	cities := make([]string, 0, len(fields))
	for _, field := range fields {
		city := strings.TrimSpace(field)
		if city == "" {
			continue
		}
		cities = append(cities, city)
	}

	return cities
}
