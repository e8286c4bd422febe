package main

import (
	"context"
	"io"

	"github.com/kpawlak/catcheck"
	"github.com/kpawlak/catcheck/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Extractor  catcheck.CatalogExtractor
	Inventory  catcheck.InventoryReader
	Simplifier catcheck.Simplifier
	Runs       catcheck.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Simplify SimplifyCmd `cmd:"" help:"Strip clinical fragments from catalog files in place"`
	Validate ValidateCmd `cmd:"" help:"Validate simplified catalogs against the before-inventory"`
	Runs     RunsCmd     `cmd:"" help:"List recorded validation runs"`
}

// SimplifyCmd is the "simplify" subcommand.
type SimplifyCmd struct {
	Files       []string `arg:"" optional:"" help:"Catalog files (default: the known catalog set)"`
	Dir         string   `short:"d" default:"." help:"Directory containing catalog files"`
	Verbose     bool     `short:"v" help:"Enable structured logging to stderr"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent file limit"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	Files       []string `arg:"" optional:"" help:"Catalog files (default: the known catalog set)"`
	Dir         string   `short:"d" default:"." help:"Directory containing catalog files"`
	Before      string   `short:"b" default:"inventory_before.txt" help:"Before-inventory snapshot path"`
	Report      string   `short:"r" default:"validation_report.txt" help:"Report output path"`
	DOM         bool     `help:"Use the DOM-based extractor instead of marker scanning"`
	Verbose     bool     `short:"v" help:"Enable structured logging to stderr"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent file limit"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	File  string `help:"Only show runs for this catalog file"`
	Limit int    `default:"20" help:"Maximum runs to show"`
}

// defaultCatalogFiles is the known DME catalog set, processed when no
// files are given on the command line.
var defaultCatalogFiles = []string{
	"catalog_diabetic_hospital.html",
	"catalog_mobility_aids.html",
	"catalog_orthotic_prosthetic.html",
	"catalog_patient_care.html",
	"catalog_specialized.html",
	"catalog_surgical_dressings.html",
	"catalog_therapeutic.html",
}
