package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rd4r3/ai-incident-analyzer/pkg/incidents"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Batch-import incident records from a JSON file",
		Long:  "Import reads a JSON array of incident records, validates the required fields, and posts the whole batch to the incident API in one call.",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	_, client, err := buildToolBox(cfg)
	if err != nil {
		return err
	}

	records, err := readIncidentFile(args[0])
	if err != nil {
		return err
	}

	log.Info("importing incidents", "file", args[0], "count", len(records))

	result, err := client.AddBatch(cmd.Context(), records)
	if err != nil {
		return err
	}

	fmt.Printf("imported %d incident(s)\n", result.ProcessedCount)

	return nil
}

// readIncidentFile loads and checks a JSON array of incident records.
func readIncidentFile(path string) ([]incidents.Incident, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []incidents.Incident
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: expected a JSON array of incident records: %w", path, err)
	}

	if err := checkIncidents(records); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// checkIncidents verifies the required fields of every record before
// anything is sent to the remote service.
func checkIncidents(records []incidents.Incident) error {
	if len(records) == 0 {
		return fmt.Errorf("no incident records found")
	}

	for i, rec := range records {
		switch {
		case rec.IncidentID == "":
			return fmt.Errorf("record %d: incident_id is required", i)
		case rec.Timestamp == "":
			return fmt.Errorf("record %d (%s): timestamp is required", i, rec.IncidentID)
		case rec.Category == "":
			return fmt.Errorf("record %d (%s): category is required", i, rec.IncidentID)
		case rec.Severity == "":
			return fmt.Errorf("record %d (%s): severity is required", i, rec.IncidentID)
		case rec.Description == "":
			return fmt.Errorf("record %d (%s): description is required", i, rec.IncidentID)
		}
	}

	return nil
}
