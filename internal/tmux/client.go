package tmux

import "strings"

// currentClientName detects the client that launched tmm so switch-client
// targets the visible tmux client instead of the control-mode connection.
func currentClientName(client tmuxClient, pane string) string {
	name, err := client.DisplayMessage(strings.TrimSpace(pane), "#{client_name}")
	if err == nil && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	clients, err := client.ListClients()
	if err != nil {
		return ""
	}
	for _, c := range clients {
		if c != nil && !c.ControlMode && c.Name != "" {
			return c.Name
		}
	}
	return ""
}

// attachedSessions maps each session to whether a client other than a
// control-mode connection is attached to it.
func attachedSessions(client tmuxClient) map[string]bool {
	clients, err := client.ListClients()
	if err != nil {
		return nil
	}
	attached := make(map[string]bool)
	for _, c := range clients {
		if c == nil || c.ControlMode || c.Session == "" {
			continue
		}
		attached[c.Session] = true
	}
	return attached
}
