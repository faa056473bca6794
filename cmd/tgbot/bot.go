package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"Takeoff/internal/advisor"
	"Takeoff/internal/calc/part"
	"Takeoff/internal/logger"
)

const help = `Commands:
/variants - list structural part variants
/earthwork L W D - excavation volume of an L x W x D ft pit`

type bot struct {
	est advisor.Estimator
	log *logger.Logger
}

// reply answers one chat message.
func (b *bot) reply(ctx context.Context, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return help
	}
	// "/cmd@botname" in groups
	cmd, _, _ := strings.Cut(fields[0], "@")
	switch cmd {
	case "/start", "/help":
		return help
	case "/variants":
		var sb strings.Builder
		for _, v := range part.Variants() {
			fmt.Fprintf(&sb, "%s - %s\n", v, v.DisplayName())
		}
		return sb.String()
	case "/earthwork":
		return b.earthwork(ctx, fields[1:])
	}
	return "Unknown command.\n\n" + help
}

func (b *bot) earthwork(ctx context.Context, args []string) string {
	if len(args) != 3 {
		return "Usage: /earthwork L W D (feet)"
	}
	var dims [3]float64
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Sprintf("%q is not a number", a)
		}
		dims[i] = v
	}

	v, m, err := advisor.Feed(ctx, b.est, dims[0], dims[1], dims[2])
	if err != nil && !errors.Is(err, advisor.ErrEstimator) {
		return err.Error()
	}
	out := fmt.Sprintf("Volume: %.2f cft", v)
	switch {
	case err != nil:
		b.log.Warn("estimator: %v", err)
		return out + "\nTime and manpower estimate unavailable."
	case b.est == nil:
		return out
	}
	out += fmt.Sprintf("\nDuration: %d-%d days\nWorkers: %d-%d", m.MinDays, m.MaxDays, m.MinWorkers, m.MaxWorkers)
	if m.Notes != "" {
		out += "\n" + m.Notes
	}
	return out
}
