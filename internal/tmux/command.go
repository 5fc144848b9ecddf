package tmux

import "strings"

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

// AttachArgs builds the argv for attaching the terminal to name.
func AttachArgs(socketPath, name string, detachOthers bool) []string {
	args := append(baseArgs(socketPath), "attach-session")
	if detachOthers {
		args = append(args, "-d")
	}
	return append(args, "-t", name)
}

// NewSessionArgs builds the argv for creating and entering an unnamed session.
func NewSessionArgs(socketPath string) []string {
	return append(baseArgs(socketPath), "new-session")
}
