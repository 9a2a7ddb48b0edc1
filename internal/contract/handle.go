package contract

// Context is the opaque guest-owned token registered alongside a callback.
//
// The host never dereferences or copies through it; it is handed back to the
// applet's handler verbatim on every invocation. Typically it is a table
// index or raw address meaningful only to the applet. Its validity for the
// lifetime of the registration is the applet's exclusive responsibility.
type Context uint32

// Handler is the capability the applet hands over when registering for an
// event. Invoke receives the registered context unchanged.
type Handler interface {
	Invoke(ctx Context)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(Context)

func (f HandlerFunc) Invoke(ctx Context) {
	f(ctx)
}
