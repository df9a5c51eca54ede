// ABOUTME: CLI command to manage the cross-pillar trigger table
// ABOUTME: Triggers are toggled active/inactive, never deleted
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var triggersAll bool

// NewTriggersCmd creates the triggers command with its subcommands
func NewTriggersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triggers",
		Short: "Manage cross-pillar trigger rows",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cross-pillar triggers",
		RunE:  runTriggersList,
	}
	listCmd.Flags().BoolVar(&triggersAll, "all", false, "Include inactive triggers")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "enable [trigger-id]",
		Short: "Activate a trigger row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setTriggerActive(cmd, args[0], true)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable [trigger-id]",
		Short: "Deactivate a trigger row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setTriggerActive(cmd, args[0], false)
		},
	})

	return cmd
}

func runTriggersList(cmd *cobra.Command, args []string) error {
	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	triggers, err := store.Triggers().Active()
	if triggersAll {
		triggers, err = store.Triggers().All()
	}
	if err != nil {
		return fmt.Errorf("listing triggers: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(triggers, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tACTIVE\tSYMPTOM\tROOT CAUSE\tKEYWORDS\n")
	fmt.Fprintf(w, "--\t------\t-------\t----------\t--------\n")
	for _, t := range triggers {
		active := "yes"
		if !t.IsActive {
			active = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.TriggerID, active,
			truncate(t.PresentingSymptom, 35),
			truncate(t.RootCause, 35),
			truncate(strings.Join(t.Keywords, ", "), 35))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d trigger(s)\n", len(triggers))
	}
	return nil
}

func setTriggerActive(cmd *cobra.Command, triggerID string, active bool) error {
	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	if err := store.Triggers().SetActive(triggerID, active); err != nil {
		return fmt.Errorf("updating trigger: %w", err)
	}

	if !quiet {
		state := "enabled"
		if !active {
			state = "disabled"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Trigger %s %s\n", triggerID, state)
	}
	return nil
}
