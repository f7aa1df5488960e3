package export

import "encoding/base64"

// placeholderBase64 is a minimal blue-square PNG substituted for any
// image payload that fails validation, and always shipped at
// assets/placeholder.png for the generated program's fallback path.
const placeholderBase64 = `iVBORw0KGgoAAAANSUhEUgAAAGQAAABkCAYAAABw4pVUAAAAAXNSR0IArs4c6QAAAARnQU1BAACxjwv8YQUAAAAJcEhZcwAADsIAAA7CARUoSoAAAACjSURBVHja7dExDQAADMOw8ifd0agmHyEQJ2m1lAlABASIgAARECACAkRABASIgAARECACAkRABASIgAARECACAkRABASIgAARECACAkRABASIgAARECACAkRABASIgAARECACAkRABASIgAARECACAkRABASIgAARECACAkRABASIgAARECACAkRAZAAQAQEiIEAEBIiAADEBiIAAERAgAvK8A3P91mRJbpznAAAAAElFTkSuQmCC`

// PlaceholderPNG returns the placeholder image bytes.
func PlaceholderPNG() []byte {
	return placeholderPNG
}

var placeholderPNG = func() []byte {
	data, err := base64.StdEncoding.DecodeString(placeholderBase64)
	if err != nil {
		panic("export: invalid placeholder image: " + err.Error())
	}
	return data
}()
