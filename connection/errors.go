package connection

import "errors"

var (
	ErrUnsupportedCommandType = errors.New("unsupported command type")
	ErrUnsupportedInputType   = errors.New("unsupported input type")
	ErrUnknownFlavour         = errors.New("no scrapli platform for flavour")
)
