package inventory

import "inventory-reconciler/feature/inventory/models"

// Config holds the settings of a counting run.
type Config struct {
	// Layout describes the columns of the inventory files.
	Layout models.Layout `mapstructure:"layout"`
	// SpacesFile is the optional two-column space equivalence file.
	SpacesFile string `mapstructure:"spaces_file" default:""`
	// Verbose prints the categorized report after each file.
	Verbose bool `mapstructure:"verbose" default:"false"`
	// XLSX writes <file>.report.xlsx next to each processed file.
	XLSX bool `mapstructure:"xlsx" default:"false"`
}

// ReportPath returns where the xlsx report of an inventory file is written.
func ReportPath(path string) string {
	return path + ".report.xlsx"
}
