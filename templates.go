package ideaplan

import (
	"io/fs"

	"github.com/goliatone/go-ideaplan/pkg/renderers/deck"
	"github.com/goliatone/go-ideaplan/pkg/scaffold"
)

// DeckTemplates exposes the built-in HTML and Markdown deck templates so
// callers can override individual slides with deck.WithTemplatesFS.
func DeckTemplates() fs.FS {
	return deck.TemplatesFS()
}

// ScaffoldTemplates exposes the code scaffold templates.
func ScaffoldTemplates() fs.FS {
	return scaffold.TemplatesFS()
}

// DeckAssetsFS exposes the stylesheet and navigation script inlined into HTML
// decks, for applications that prefer to serve them separately.
//
// Typical mount:
//
//	mux.Handle("/deck/",
//	  http.StripPrefix("/deck/",
//	    http.FileServerFS(ideaplan.DeckAssetsFS()),
//	  ),
//	)
func DeckAssetsFS() fs.FS {
	return deck.AssetsFS()
}
