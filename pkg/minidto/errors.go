package minidto

// CommandError is reported to the player when a console command cannot run.
type CommandError struct {
	Code    string
	Message string
}

func (e CommandError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "minichess command error"
}
