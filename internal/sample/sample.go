// Package sample embeds the transcript served when no file is configured.
package sample

import (
	_ "embed"
	"log/slog"

	"github.com/dgallion1/wordsearch/internal/transcript"
)

// Name is the source name of the embedded transcript.
const Name = "conversation.xml"

//go:embed conversation.xml
var Conversation []byte

// SourceFor returns a file source for path, or the embedded transcript when
// path is empty.
func SourceFor(path string, log *slog.Logger) *transcript.Source {
	if path == "" {
		return transcript.NewStaticSource(Name, Conversation, log)
	}
	return transcript.NewFileSource(path, log)
}
