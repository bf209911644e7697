package engine

// walk lists root and, when recursive, every directory below it in
// depth-first pre-order. Pending directories are kept on an explicit stack
// so deep trees do not grow the goroutine stack. Children are pushed in
// reverse so they pop in name order.
//
// Symlinks to directories are typed as symlinks by the resolver and are
// therefore never descended into; "." and ".." never reach the stack because
// the collector drops hidden names.
func (e *Engine) walk(root string) error {
	pending := []string{root}

	for len(pending) > 0 {
		path := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		children, err := e.ListDirectory(path)
		if err != nil {
			return err
		}
		if !e.opts.Recursive {
			continue
		}

		for i := len(children) - 1; i >= 0; i-- {
			pending = append(pending, children[i])
		}
	}

	return nil
}
