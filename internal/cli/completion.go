package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag only needs an entry
// there.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value in zsh; empty for booleans
	IsFile    bool     // the flag takes a file path
	IsSuite   bool     // values come from the suite registry
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "suite", Short: "s", Help: "Suites to run", IsSuite: true, ValueName: "suite"},
	{Long: "list", Help: "List the registered suites"},
	{Long: "trials", Help: "Random trials per fuzz suite", Values: []string{"1000", "10000", "100000", "1000000"}, ValueName: "count"},
	{Long: "max-words", Help: "Maximum words per vector", Values: []string{"4", "16", "127"}, ValueName: "words"},
	{Long: "seed", Help: "Pseudo-random seed", ValueName: "seed"},
	{Long: "workers", Help: "Suites run concurrently", ValueName: "count"},
	{Long: "timeout", Help: "Maximum duration of the run", Values: []string{"1m", "5m", "30m", "1h"}, ValueName: "duration"},
	{Long: "profile", Help: "Trial profile", Values: []string{"quick", "full"}, ValueName: "profile"},
	{Long: "quiet", Short: "q", Help: "Print only the final status"},
	{Long: "verbose", Short: "v", Help: "Print every mismatch"},
	{Long: "tui", Help: "Run the interactive dashboard"},
	{Long: "repl", Help: "Start the kernel calculator"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "theme", Help: "Color theme", Values: []string{"dark", "light", "orange"}, ValueName: "theme"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "metrics-file", Help: "Prometheus textfile output", IsFile: true, ValueName: "file"},
	{Long: "output", Short: "o", Help: "Mismatch report file", IsFile: true, ValueName: "file"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell to out. Suite
// names are offered for --suite along with the all, fuzz and timing
// keywords.
func GenerateCompletion(out io.Writer, shell string, suites []string) error {
	values := strings.Join(append([]string{"all", "fuzz", "timing"}, suites...), " ")
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(values)
	case "zsh":
		script = zshCompletion(values)
	case "fish":
		script = fishCompletion(values)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion(suites string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		names := flagNames(f)
		opts = append(opts, names...)

		var body string
		switch {
		case f.IsSuite:
			body = `COMPREPLY=( $(compgen -W "${suites}" -- "${cur}") )`
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n", strings.Join(names, "|"), body)
	}

	return fmt.Sprintf(`# Bash completion script for vec32check
# Add this to your ~/.bashrc or ~/.bash_completion

_vec32check_completions() {
    local cur prev opts suites
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"
    suites="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _vec32check_completions vec32check
`, strings.Join(opts, " "), suites, cases.String())
}

func zshCompletion(suites string) string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		var suffix string
		switch {
		case f.IsFile:
			suffix = fmt.Sprintf(":%s:_files", f.ValueName)
		case f.IsSuite:
			suffix = fmt.Sprintf(":%s:($suites)", f.ValueName)
		case len(f.Values) > 0:
			suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			suffix = fmt.Sprintf(":%s:", f.ValueName)
		}
		if f.Short != "" {
			args = append(args, fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, suffix))
		} else {
			args = append(args, fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, suffix))
		}
	}

	return fmt.Sprintf(`#compdef vec32check

# Zsh completion script for vec32check
# Place this file in a directory on $fpath

_vec32check() {
    local -a suites
    suites=(%s)

    _arguments -s \
%s
}

_vec32check "$@"
`, suites, strings.Join(args, " \\\n"))
}

func fishCompletion(suites string) string {
	lines := []string{
		"# Fish completion script for vec32check",
		"# Add this to ~/.config/fish/completions/vec32check.fish",
		"",
		"complete -c vec32check -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c vec32check"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case f.IsSuite:
			parts = append(parts, fmt.Sprintf("-xa '%s'", suites))
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}
