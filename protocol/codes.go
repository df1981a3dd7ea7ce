package protocol

// errorCodes maps the encoder's two-character error codes to their
// descriptions, per the wire-protocol specification. Initialized once at
// process start and never mutated.
var errorCodes = map[string]string{
	"ES": "Encoding error. The encoder failed to write the card in the slot.",
	"NC": "No card. There is no card in the encoder slot.",
	"NF": "Not found. The requested record does not exist on the encoder.",
	"OV": "Overflow. The encoder is still busy executing a previous task and cannot accept a new one.",
	"EP": "Parameter error. One or more fields of the request are malformed or out of range.",
	"EF": "Format error. The received frame does not match the expected layout.",
	"TD": "Time/date error. The supplied date or time value is invalid.",
	"ED": "Erase error. The data on the card could not be cleared.",
	"EA": "Authorization error. The request is not permitted for the current operator.",
	"OS": "Out of service. The encoder is offline or in maintenance mode.",
	"EO": "Operation error. The requested operation failed while executing.",
	"EG": "Generic error. The encoder reported an unspecified internal failure.",
}

// LookupErrorCode returns the description for a two-character error code and
// whether the code is known.
func LookupErrorCode(code string) (string, bool) {
	desc, ok := errorCodes[code]
	return desc, ok
}
