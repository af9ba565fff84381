package reactive

// SetValue stores a scope value visible to o and its descendants.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// Value looks key up in o, then in its ancestors.
func (o *Owner) Value(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		cur.valuesMu.RLock()
		v, ok := cur.values[key]
		cur.valuesMu.RUnlock()
		if ok {
			return v, true
		}
	}
	return nil, false
}

// ProvideContext stores value under key on the current owner.
// Outside an owner it does nothing.
func ProvideContext(key, value any) {
	if o := CurrentOwner(); o != nil {
		o.SetValue(key, value)
	}
}

// UseContext returns the nearest value stored under key, typed as T.
func UseContext[T any](key any) (T, bool) {
	var zero T
	o := CurrentOwner()
	if o == nil {
		return zero, false
	}
	v, ok := o.Value(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
