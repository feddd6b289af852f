package connection

type (
	Protocol    string
	CommandType string
)

const (
	ProtocolSSH     Protocol = "ssh"
	ProtocolScrapli Protocol = "scrapli"

	CommandTypeCommands         CommandType = "commands"
	CommandTypeInteractiveEvent CommandType = "interactive_event"
)
