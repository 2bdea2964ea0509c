package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# chlog Configuration
# Priority: CHLOG_* env vars > .chlog/config.yml > user config > defaults

store_path: .chlog/changelog.yaml   # Changelog store file
report_path: changelog.html         # Generated HTML report
report_title: Project Changelog     # Report heading
list_limit: 0                       # Max entries shown by 'chlog list' (0 = all)
plain: false                        # Disable colors and icons (NO_COLOR also works)
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"store_path":   ".chlog/changelog.yaml",
		"report_path":  "changelog.html",
		"report_title": "Project Changelog",
		// list_limit 0 shows the full history.
		"list_limit": 0,
		"plain":      false,
	}
}
