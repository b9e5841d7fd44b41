package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/anisan-cli/anigraph/metric"
	"github.com/anisan-cli/anigraph/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// printMetrics writes the collected request metrics to stderr, or stdout as JSON with --json.
func printMetrics(cmd *cobra.Command) error {
	samples, err := metric.Snapshot()
	if err != nil {
		return err
	}

	if lo.Must(cmd.Flags().GetBool("json")) {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(samples)
	}

	out := cmd.ErrOrStderr()
	fmt.Fprintln(out)
	for _, sample := range samples {
		fmt.Fprintf(out, "%s%s %s\n",
			style.Fg(style.AccentColor)(sample.Name),
			style.Faint(labels(sample.Labels)),
			style.Bold(fmt.Sprintf("%g", sample.Value)),
		)
	}
	return nil
}

func labels(pairs map[string]string) string {
	if len(pairs) == 0 {
		return ""
	}

	keys := lo.Keys(pairs)
	sort.Strings(keys)
	return "{" + strings.Join(lo.Map(keys, func(k string, _ int) string {
		return fmt.Sprintf("%s=%q", k, pairs[k])
	}), ",") + "}"
}
