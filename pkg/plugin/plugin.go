// Package plugin defines the uniform tool-plugin contract. A plugin turns an
// extracted argument into a typed result and never lets a failure escape past
// Execute; errors are captured in the Result.
package plugin

import "context"

// Result is the outcome of one plugin invocation. Exactly one of Data or
// Error is meaningful, selected by Success.
type Result struct {
	PluginName string      `json:"plugin_name"`
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Plugin is the contract every tool implements.
type Plugin interface {
	Name() string
	Description() string
	Execute(ctx context.Context, argument string) Result
}

func SuccessResult(name string, data interface{}) Result {
	return Result{
		PluginName: name,
		Success:    true,
		Data:       data,
	}
}

func ErrorResult(name string, err error) Result {
	return Result{
		PluginName: name,
		Success:    false,
		Error:      err.Error(),
	}
}
