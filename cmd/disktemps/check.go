package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/drowe/disktemps/internal/collector"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse the status file and show what would be reported",
	Long: `Parse and validate the disk status file without sending anything,
and print the devices a collection pass would report. Sections that fail
validation (no name, no temperature, non-numeric temperature) are skipped
exactly as they would be during a real pass; run with --verbose to see why.`,
	Run: runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "Output as JSON")
}

func runCheck(cmd *cobra.Command, args []string) {
	jsonOut, _ := cmd.Flags().GetBool("json")

	cfg, log, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	devices, err := collector.Collect(cfg.Source, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(devices)
		return
	}

	printDeviceTable(devices)
}

func printDeviceTable(devices []collector.DeviceRecord) {
	if len(devices) == 0 {
		fmt.Println("No reportable devices found")
		return
	}

	fmt.Printf("%-10s %6s  %-8s %-10s %-10s %-5s %s\n",
		"NAME", "TEMP", "TYPE", "DEVICE", "TRANSPORT", "KIND", "ID")
	for _, d := range devices {
		fmt.Printf("%-10s %5d°  %-8s %-10s %-10s %-5s %s\n",
			d.Name, d.Temp, d.Type, d.Device, d.Transport,
			d.Rotational.DriveKind(), d.ID)
	}
	fmt.Printf("\n%d device(s) would be reported\n", len(devices))
}
