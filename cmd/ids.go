package cmd

import (
	"fmt"
	"strconv"

	"github.com/s0up4200/eventorkit/eventor"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toClassifications(codes []int) []eventor.Classification {
	if len(codes) == 0 {
		return nil
	}
	classifications := make([]eventor.Classification, len(codes))
	for i, code := range codes {
		classifications[i] = eventor.Classification(code)
	}
	return classifications
}
