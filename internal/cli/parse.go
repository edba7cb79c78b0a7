package cli

import (
	"github.com/matzehuels/supertile/pkg/catalog"
	"github.com/matzehuels/supertile/pkg/pipeline"
	"github.com/matzehuels/supertile/pkg/supertile"
)

// requestFromArgs builds a request from KIND INPUTS [OUTPUTS]. Sink kinds
// have no outputs, so any given are dropped with a warning.
func requestFromArgs(cat *catalog.Catalog, args []string) (supertile.Request, error) {
	var outputs string
	if len(args) > 2 {
		outputs = args[2]
	}
	req, err := pipeline.ParseRequest(args[0], args[1], outputs)
	if err != nil {
		return supertile.Request{}, err
	}
	if kind, ok := cat.Lookup(req.Kind); ok && kind.Procedure == supertile.Sink && len(req.Outputs) > 0 {
		printWarning("%s is a sink, ignoring outputs %q", kind.Name, outputs)
		req.Outputs = nil
	}
	return req, nil
}

// completeKinds completes the KIND argument from the built-in catalog.
func completeKinds(cat *catalog.Catalog) []string {
	return cat.Names()
}
