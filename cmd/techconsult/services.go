package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/techconsult/internal/catalog"
)

type servicesOptions struct {
	jsonOutput bool
}

func newServicesCmd() *cobra.Command {
	opts := &servicesOptions{}

	cmd := &cobra.Command{
		Use:         "services",
		Short:       "List the managed service offerings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{standaloneAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			offerings := catalog.Offerings()
			if opts.jsonOutput {
				return renderServicesJSON(cmd, offerings)
			}
			return renderServicesTable(cmd, offerings)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderServicesTable(cmd *cobra.Command, offerings []catalog.Offering) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "TYPE\tSERVICE\tKEY FEATURES")
	for _, o := range offerings {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", o.ServiceType, o.Title, strings.Join(o.Features, ", "))
	}

	return writer.Flush()
}

type servicesJSONPayload struct {
	Version  string             `json:"version"`
	Count    int                `json:"count"`
	Services []catalog.Offering `json:"services"`
}

func renderServicesJSON(cmd *cobra.Command, offerings []catalog.Offering) error {
	payload := servicesJSONPayload{
		Version:  "1.0",
		Count:    len(offerings),
		Services: offerings,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
