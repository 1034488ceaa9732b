package helm

import (
	"fmt"
	"strings"
)

// Command is a helm invocation split into display lines. Each line holds
// one or more already-quoted arguments.
type Command struct {
	lines [][]string
}

// Install builds:
//
//	helm install "<name>" --namespace "<ns>" --create-namespace \
//	    --set githubConfigUrl="<url>" <chart> -f <file>
func Install(name, namespace, githubConfigURL, chart, valuesFile string) Command {
	return Command{lines: [][]string{
		{"helm", "install", quote(name)},
		{"--namespace", quote(namespace)},
		{"--create-namespace"},
		{"--set", "githubConfigUrl=" + quote(githubConfigURL)},
		{chart, "-f", valuesFile},
	}}
}

// Uninstall builds: helm uninstall "<name>" --namespace "<ns>".
func Uninstall(name, namespace string) Command {
	return Command{lines: [][]string{
		{"helm", "uninstall", quote(name), "--namespace", quote(namespace)},
	}}
}

// Args returns the arguments in order, quoting included.
func (c Command) Args() []string {
	var args []string
	for _, line := range c.lines {
		args = append(args, line...)
	}
	return args
}

// String formats the command on a single line.
func (c Command) String() string {
	return strings.Join(c.Args(), " ")
}

// Multiline formats the command with shell line continuations, one group
// of arguments per line.
func (c Command) Multiline() string {
	parts := make([]string, len(c.lines))
	for i, line := range c.lines {
		parts[i] = strings.Join(line, " ")
	}
	return strings.Join(parts, " \\\n    ")
}

// quote wraps s in double quotes for a POSIX shell.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return fmt.Sprintf(`"%s"`, r.Replace(s))
}
