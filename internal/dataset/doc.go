// Package dataset loads bike-share trip records from city source files.
//
// A Loader resolves a city name through the config.Catalog to a file in the
// data directory, decodes it from the configured text encoding (cp949 by
// default) using golang.org/x/text, and parses the CSV into a model.Dataset.
//
// Usage:
//
//	loader := dataset.NewLoader(catalog, "./csv", dataset.WithEncoding("cp949"))
//	ds, err := loader.Load(ctx, "chicago")
//	if err != nil {
//	    return err
//	}
//	filtered := ds.Filter(model.Filter{City: "chicago", Month: "june", Day: "all"})
package dataset
