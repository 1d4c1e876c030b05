//Package mtpjson reads training sets stored as JSON, as produced by
//pymatgen-based workflows, into goMTP structures and labels.
//The input is an array of objects, each one with a "structure" (the
//dictionary form of a pymatgen Structure) and "outputs" with the "energy",
//"forces" and "stress" (or "virial_stress") of the structure. Any of the
//outputs can be missing or null. Files compressed with zstd or gzip are
//read transparently.
package mtpjson
