// Package batch runs several fire-case sizing requests in one call.
package batch

import (
	"Relief/internal/sizing"
	"Relief/internal/validate"
)

type Input struct {
	Items []sizing.Input `json:"items"`
}

type Result struct {
	Results []sizing.Result `json:"results"`
}

// Calculate sizes every case in order. The first failing case aborts the
// batch so the caller sees which input was at fault.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, validate.Inputf("Batch request contains no items.")
	}
	out := Result{Results: make([]sizing.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := sizing.Calculate(item)
		if err != nil {
			return Result{}, validate.Inputf("Item %d: %s", i+1, err.Error())
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
