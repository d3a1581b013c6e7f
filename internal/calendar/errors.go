package calendar

import "fmt"

// ValidationError reports a malformed or missing parameter
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("输入验证错误: %s", e.Message)
}

// DateParseError reports a date string that fails round-trip parsing
type DateParseError struct {
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("日期解析错误: %s", e.Value)
}

// DateRangeError reports an inverted or oversized date range
type DateRangeError struct {
	Message string
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("日期范围错误: %s", e.Message)
}

// UnknownOperationError reports an unrecognized operation or query type
type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("未知的操作: %s", e.Operation)
}
