package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to notionblog! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Public host.
	hostPrompt := promptui.Prompt{
		Label:    "Public site URL",
		Default:  cfg.Host,
		Validate: validateHost,
	}
	host, err := hostPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	cfg.Host = host

	// 2. Root page.
	rootPrompt := promptui.Prompt{
		Label: "Root page id (leave blank to skip)",
	}
	rootID, err := rootPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("root page id: %w", err)
	}
	cfg.RootPageID = rootID

	// 3. Header style.
	stylePrompt := promptui.Select{
		Label: "Select header style",
		Items: []string{
			"default: breadcrumbs and search from the page renderer",
			"custom: root breadcrumb, navigation links and theme toggle",
		},
	}
	styleIdx, _, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	cfg.NavigationStyle = []NavigationStyle{NavigationDefault, NavigationCustom}[styleIdx]

	// 4. Search.
	searchPrompt := promptui.Select{
		Label: "Enable search",
		Items: []string{"yes", "no"},
	}
	searchIdx, _, err := searchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	cfg.SearchEnabled = searchIdx == 0

	// 5. Data source.
	sourcePrompt := promptui.Select{
		Label: "Site map source",
		Items: []string{string(SourceFile), string(SourceSQLite)},
	}
	_, source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data source: %w", err)
	}
	cfg.Data.Source = DataSource(source)

	// 6. Sitemap excludes.
	excludePrompt := promptui.Prompt{
		Label:   "Sitemap exclude globs (comma-separated, leave blank for none)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Sitemap.Exclude = append(cfg.Sitemap.Exclude, splitAndTrim(excludeStr)...)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateHost(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL such as https://example.com")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
