package shell

// PageChanged is emitted after every successful reveal. Fire-and-forget:
// listener findings never influence the navigation that produced them.
type PageChanged struct {
	Page      string
	Container *Container
}

// PageChangedListener observes reveals, e.g. for breadcrumbs or usage logs.
type PageChangedListener func(PageChanged)

// OnPageChanged registers a listener. Call before the program starts; the
// listener slice is not guarded for concurrent mutation.
func (s *Shell) OnPageChanged(fn PageChangedListener) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

func (s *Shell) emitPageChanged(page string) {
	ev := PageChanged{Page: page, Container: s.container}
	for _, fn := range s.listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("page-changed listener panicked", "page", page, "panic", r)
				}
			}()
			fn(ev)
		}()
	}
}
