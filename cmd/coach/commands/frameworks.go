// ABOUTME: CLI command to inspect the framework registry
// ABOUTME: Lists domains and frameworks with tier, triage, and contraindications
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/purposewaze/relate-coach/internal/registry"
)

var (
	frameworksDomain string
	frameworksListDs bool
)

// NewFrameworksCmd creates the frameworks command
func NewFrameworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frameworks",
		Short: "List coaching frameworks from the registry",
		Long: `List the coaching framework catalog with evidence tier, default
triage color, and contraindications.

Examples:
  coach frameworks
  coach frameworks --domain communication_conflict
  coach frameworks --domains
  coach frameworks --format json`,
		RunE: runFrameworks,
	}

	cmd.Flags().StringVar(&frameworksDomain, "domain", "", "Filter by domain ID")
	cmd.Flags().BoolVar(&frameworksListDs, "domains", false, "List the framework domains instead")

	return cmd
}

func runFrameworks(cmd *cobra.Command, args []string) error {
	if frameworksListDs {
		return listDomains(cmd)
	}

	frameworks := registry.AllFrameworks()
	if frameworksDomain != "" {
		if _, err := registry.DomainByID(frameworksDomain); err != nil {
			return err
		}
		frameworks = registry.FrameworksForDomain(frameworksDomain)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(frameworks, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tDOMAIN\tTIER\tTRIAGE\tCONTRAINDICATIONS\n")
	fmt.Fprintf(w, "----\t------\t----\t------\t-----------------\n")
	for _, fw := range frameworks {
		contra := "-"
		if len(fw.Contraindications) > 0 {
			contra = truncate(strings.Join(fw.Contraindications, ", "), 40)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(fw.Name, 35), fw.Domain, fw.Tier, fw.DefaultTriage, contra)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d framework(s)\n", len(frameworks))
	}
	return nil
}

func listDomains(cmd *cobra.Command) error {
	domains := registry.Domains()

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(domains, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tLABEL\tPRIORITY\tFRAMEWORKS\n")
	fmt.Fprintf(w, "--\t-----\t--------\t----------\n")
	for _, d := range domains {
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%d\n", d.ID, d.Label, d.BasePriority, len(d.Frameworks))
	}
	w.Flush()
	return nil
}
