package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reflowhq/reflow/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [learner-id]",
	Short: "Show a learner's knowledge graph summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		learnerID := args[0]

		nodes, err := st.NodeRepo().ListByLearner(ctx, learnerID)
		if err != nil {
			return err
		}
		topics, err := st.TopicRepo().ListByLearner(ctx, learnerID)
		if err != nil {
			return err
		}

		byMastery := map[string]int{}
		for _, n := range nodes {
			byMastery[n.CurrentMastery]++
		}

		fmt.Printf("Learner %s: %d concepts, %d topics\n", learnerID, len(nodes), len(topics))
		for _, state := range []string{"solid", "developing", "shaky", "revisit"} {
			if byMastery[state] > 0 {
				fmt.Printf("  %-11s %d\n", state, byMastery[state])
			}
		}
		if len(nodes) == 0 {
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "\nCONCEPT\tMASTERY\tSESSIONS\tTOPIC")
		for _, n := range nodes {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", n.DisplayName, n.CurrentMastery, n.SessionCount, n.TopicName)
		}
		return w.Flush()
	},
}
