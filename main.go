/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Reefdesk Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reefdesk/tabular/config"
	"github.com/reefdesk/tabular/core/server"
	"github.com/reefdesk/tabular/core/tabular"
	"github.com/reefdesk/tabular/datasources"
	"github.com/reefdesk/tabular/demo"
)

var (
	verbose    bool
	configPath string
	listenAddr string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tabular",
	Short: "Browse tabular datasets with search, filters, sorting and paging",
	Long: `tabular serves datasets as interactive HTML tables and renders them
on the terminal. The whole view state lives in the URL: search text,
column filters, sort order, page and the expanded row.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the configured datasets over HTTP",
	RunE:  runServe,
}

var renderCmd = &cobra.Command{
	Use:   "render [csv-file]",
	Short: "Render a CSV file as a text table",
	Long: `Runs the view pipeline over a CSV file and prints the resulting page
as a text table. Flags select the slice to show, the same way URL
parameters do on the server.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderSearch   string
	renderSort     string
	renderDesc     bool
	renderPage     int
	renderPageSize int
	renderFilters  []string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "listen address, overrides the config")

	renderCmd.Flags().StringVar(&renderSearch, "search", "", "search text")
	renderCmd.Flags().StringVar(&renderSort, "sort", "", "sort column key")
	renderCmd.Flags().BoolVar(&renderDesc, "desc", false, "sort descending")
	renderCmd.Flags().IntVar(&renderPage, "page", 0, "page number, starting at 0")
	renderCmd.Flags().IntVar(&renderPageSize, "size", tabular.DefaultPageSize, "rows per page")
	renderCmd.Flags().StringArrayVar(&renderFilters, "filter", nil, "column filter as key=value, repeatable")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if listenAddr != "" {
		cfg.Addr = listenAddr
	}

	registry := datasources.NewRegistry()
	if cfg.Demo {
		if err := demo.RegisterAll(registry); err != nil {
			return err
		}
	}
	for _, dc := range cfg.Datasets {
		d, err := datasources.LoadCSV(dc.Path, dc.Name, dc.Title, dc.Description)
		if err != nil {
			return err
		}
		d.Defaults.PageSize = cfg.DefaultPageSize
		d.Defaults.PageSizeOptions = cfg.PageSizeOptions
		if err := registry.Register(d); err != nil {
			return err
		}
		logger.Info("loaded dataset",
			zap.String("name", d.Name),
			zap.Int("rows", len(d.Rows)))
	}
	if len(registry.List()) == 0 {
		return fmt.Errorf("no datasets configured, enable demo or add [[dataset]] entries")
	}

	srv, err := server.New(logger, registry)
	if err != nil {
		return err
	}
	srv.Title = cfg.Title
	srv.Subtitle = cfg.Subtitle

	logger.Info("listening", zap.String("addr", cfg.Addr))
	return http.ListenAndServe(cfg.Addr, srv.Handler())
}

func runRender(cmd *cobra.Command, args []string) error {
	d, err := datasources.LoadCSV(args[0], "cli", "", "")
	if err != nil {
		return err
	}
	if renderPageSize > 0 {
		d.Defaults.PageSize = renderPageSize
	}

	st := tabular.NewState(d.Defaults).WithSearch(renderSearch)
	if renderSort != "" {
		st.SortKey = renderSort
		st.SortDir = tabular.Ascending
		if renderDesc {
			st.SortDir = tabular.Descending
		}
	}
	for _, f := range renderFilters {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return fmt.Errorf("invalid filter %q, expected key=value", f)
		}
		st = st.WithFilter(key, value)
	}
	st = st.WithPage(renderPage)

	res := tabular.Compute(d.Rows, d.Columns, d.SearchFields, st)
	fmt.Fprint(cmd.OutOrStdout(), tabular.RenderText(d.Columns, res))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
