package api

import "tether/internal/schema"

// Event discriminants of usb.serial. Exported so the host's registration
// table and the tests agree on the wire values without re-deriving them.
const (
	SerialEventRead  uint32 = 0
	SerialEventWrite uint32 = 1
)

func usbSerial() schema.Item {
	return schema.Mod(&schema.Module{
		Name: "serial",
		Docs: schema.Docs{"USB serial."},
		Items: []schema.Item{
			schema.Fn(&schema.Function{
				Name:   "read",
				Symbol: "usr",
				Docs:   schema.Docs{"Reads from USB serial into a buffer."},
				Params: []schema.Field{
					{Name: "ptr", Docs: schema.Docs{"Address of the buffer."}, Type: schema.PtrMut},
					{Name: "len", Docs: schema.Docs{"Length of the buffer in bytes."}, Type: schema.USize},
				},
				Results: []schema.Field{
					{Name: "len", Docs: schema.Docs{
						"Number of bytes read (or negative value for errors).",
						"",
						"This function does not block and may return zero.",
					}, Type: schema.ISize},
				},
			}),
			schema.Fn(&schema.Function{
				Name:   "write",
				Symbol: "usw",
				Docs:   schema.Docs{"Writes to USB serial from a buffer."},
				Params: []schema.Field{
					{Name: "ptr", Docs: schema.Docs{"Address of the buffer."}, Type: schema.PtrConst},
					{Name: "len", Docs: schema.Docs{"Length of the buffer in bytes."}, Type: schema.USize},
				},
				Results: []schema.Field{
					{Name: "len", Docs: schema.Docs{
						"Number of bytes written (or negative value for errors).",
						"",
						"This function does not block and may return zero.",
					}, Type: schema.ISize},
				},
			}),
			schema.En(&schema.Enum{
				Name: "Event",
				Docs: schema.Docs{"USB serial events."},
				Variants: []schema.Variant{
					{Name: "Read", Docs: schema.Docs{"Ready for read."}, Value: SerialEventRead},
					{Name: "Write", Docs: schema.Docs{"Ready for write."}, Value: SerialEventWrite},
				},
			}),
			schema.Fn(&schema.Function{
				Name:   "register",
				Symbol: "use",
				Docs: schema.Docs{
					"Registers a callback when USB serial is ready.",
					"",
					"It is possible that the callback is spuriously called.",
				},
				Params: []schema.Field{
					{Name: "event", Type: schema.USize},
					{Name: "handler", Type: schema.Callback},
				},
			}),
			schema.Fn(&schema.Function{
				Name:   "unregister",
				Symbol: "usd",
				Docs:   schema.Docs{"Unregisters a callback."},
				Params: []schema.Field{
					{Name: "event", Type: schema.USize},
				},
			}),
			schema.Fn(&schema.Function{
				Name:   "flush",
				Symbol: "usf",
				Docs:   schema.Docs{"Flushs the USB serial."},
				Results: []schema.Field{
					{Name: "res", Docs: schema.Docs{"Zero on success, -1 on error."}, Type: schema.ISize},
				},
			}),
		},
	})
}

// SerialEvents returns the usb.serial event enum, the legal event set for
// register/unregister.
func SerialEvents() *schema.Enum {
	root := Root()
	usbMod := root.Items[0].Mod
	serialMod := usbMod.Items[0].Mod
	for _, it := range serialMod.Items {
		if it.Kind == schema.ItemEnum && it.Enum.Name == "Event" {
			return it.Enum
		}
	}
	return nil
}
