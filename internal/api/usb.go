package api

import "tether/internal/schema"

func usb() schema.Item {
	return schema.Mod(&schema.Module{
		Name: "usb",
		Docs: schema.Docs{"USB interface."},
		Items: []schema.Item{
			usbSerial(),
		},
	})
}
