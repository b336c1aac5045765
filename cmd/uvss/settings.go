package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uvss/internal/format"
	"uvss/internal/project"
	"uvss/internal/version"
)

// settings merges uvss.toml with the global flags. Flags given on the
// command line win over the configuration file.
type settings struct {
	config         project.Config
	configPath     string
	maxDiagnostics int
	quiet          bool
	timings        bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	s := &settings{}
	if configPath != "" {
		cfg, loadErr := project.LoadConfig(configPath)
		if loadErr != nil {
			return nil, loadErr
		}
		s.config, s.configPath = cfg, configPath
	} else {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, wdErr
		}
		manifest, ok, loadErr := project.LoadManifest(wd)
		if loadErr != nil {
			return nil, loadErr
		}
		if ok {
			s.config, s.configPath = manifest.Config, manifest.Path
		}
	}
	if err := s.config.CheckRequires(version.Version); err != nil {
		return nil, err
	}

	s.maxDiagnostics, err = flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !flags.Changed("max-diagnostics") && s.config.Diagnostics.Max > 0 {
		s.maxDiagnostics = s.config.Diagnostics.Max
	}
	s.quiet, err = flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	s.timings, err = flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return s, nil
}

// boolSetting returns the flag value when it was given, the configured
// value otherwise.
func boolSetting(cmd *cobra.Command, name string, configured bool) (bool, error) {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if cmd.Flags().Changed(name) {
		return v, nil
	}
	return v || configured, nil
}

func (s *settings) extensions() []string {
	return s.config.Format.Extensions
}

func (s *settings) formatOptions() (format.Options, error) {
	indent, err := s.config.Format.IndentString()
	if err != nil {
		return format.Options{}, err
	}
	newline, err := s.config.Format.NewlineString()
	if err != nil {
		return format.Options{}, err
	}
	return format.Options{Indent: indent, Newline: newline}, nil
}
