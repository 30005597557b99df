package grammar

import "strings"

// Grammar ids whose sample file is named differently from the id.
var sampleFileIDs = map[string]string{
	"protobuf":        "proto",
	"capnproto":       "capnp",
	"flatbuffers":     "fbs",
	"json_query":      "jsonquery",
	"xml_query":       "xmlquery",
	"xwnode_executor": "xwnodeexecutor",
	"matlab":          "matlabmat",
	"plaintext":       "text",
	"messagepack":     "msgpack",
}

var grammarIDs = func() map[string]string {
	m := make(map[string]string, len(sampleFileIDs))
	for g, f := range sampleFileIDs {
		m[f] = g
	}
	return m
}()

// SamplePrefix is the base name shared by every sample file.
const SamplePrefix = "sample."

// SampleFileID maps a grammar id to the <id> of its sample.<id> file.
func SampleFileID(grammarID string) string {
	if f, ok := sampleFileIDs[grammarID]; ok {
		return f
	}
	return grammarID
}

// SampleFileName returns "sample.<file id>" for a grammar id.
func SampleFileName(grammarID string) string {
	return SamplePrefix + SampleFileID(grammarID)
}

// GrammarIDFromFileName maps "sample.proto" (or a bare "proto") back to "protobuf".
func GrammarIDFromFileName(name string) string {
	fileID := strings.TrimPrefix(name, SamplePrefix)
	if g, ok := grammarIDs[fileID]; ok {
		return g
	}
	return fileID
}
