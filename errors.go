package linkedhashmap

// KeyNotFound - Custom error to inform that no record was found for a key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// Is - Makes errors.Is(err, KeyNotFound{}) match regardless of message
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// IteratorExhausted - Custom error to inform that an iterator has no more records
type IteratorExhausted struct {
	msg string
}

// Error - Used to notify that an iterator has no more records
func (E IteratorExhausted) Error() string {
	if E.msg == "" {
		return "iterator exhausted"
	}
	return E.msg
}
