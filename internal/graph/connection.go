package graph

import "fmt"

// DefaultPort is the identity-key placeholder for the implicit single port.
const DefaultPort = "default"

// Connection is a directed edge from an output port (single or one fan-out
// sub-port) to an input port (single or one fixed sub-port). Empty port ids
// denote the implicit single port.
type Connection struct {
	FromNode string
	FromPort string
	ToNode   string
	ToPort   string
}

// Key returns the connection's identity key. Two connections between the
// same node pair are distinct only when they leave different output
// sub-ports; the target port does not participate in identity.
func (c Connection) Key() string {
	fromPort := c.FromPort
	if fromPort == "" {
		fromPort = DefaultPort
	}
	return fmt.Sprintf("%s|%s|%s", c.FromNode, c.ToNode, fromPort)
}

func (c Connection) String() string {
	return fmt.Sprintf("%s[%s] -> %s[%s]", c.FromNode, c.FromPort, c.ToNode, c.ToPort)
}
