package flash

import "github.com/Ahmed-hessen/E-shop/pkg/view"

// Notices collects the messages raised while handling one request so they can
// be written as a single flash cookie before redirecting.
type Notices struct {
	items []view.Flash
}

func (n *Notices) Info(msg string)    { n.add(view.FlashInfo, msg) }
func (n *Notices) Success(msg string) { n.add(view.FlashSuccess, msg) }
func (n *Notices) Error(msg string)   { n.add(view.FlashError, msg) }

func (n *Notices) Items() []view.Flash { return n.items }

func (n *Notices) add(kind view.FlashKind, msg string) {
	n.items = append(n.items, view.Flash{Kind: kind, Message: msg})
}
