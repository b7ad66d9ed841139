package command

// VersionCommand prints the version.
type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Run(_ []string) int {
	c.Ui.Output("micrograd " + Version)
	return 0
}

func (c *VersionCommand) Help() string {
	return "Usage: micrograd version\n\n  Prints the micrograd version."
}

func (c *VersionCommand) Synopsis() string {
	return "Show the version"
}
