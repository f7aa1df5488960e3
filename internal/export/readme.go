package export

import "fmt"

// DefaultReadmeTitle heads the README when the design has no window
// title.
const DefaultReadmeTitle = "CustomTkinter GUI Application"

// Readme renders the archive's README.md for the given window title.
func Readme(title string) string {
	if title == "" {
		title = DefaultReadmeTitle
	}
	return fmt.Sprintf(`# %s

This is a modern CustomTkinter GUI application generated with Buildfy Canvas.

## Requirements
- Python 3.7 or later
- Packages listed in requirements.txt

## Installation
1. Install Python from https://www.python.org/downloads/
2. Install dependencies: 
   `+"```"+`
   pip install -r requirements.txt
   `+"```"+`

## Running the application
`+"```"+`
python app.py
`+"```"+`

## Features
- Modern UI with system theme detection (adapts to your OS settings)
- Responsive layout with grid system
- Customizable components
- Cross-platform compatibility (Windows, macOS, Linux)

## Theme settings
This application uses CustomTkinter's system mode by default to match your operating system theme:
`+"```python"+`
ctk.set_appearance_mode("system")
`+"```"+`

You can also manually set it to "light" or "dark" by changing the above line.

## Troubleshooting
If your GUI doesn't load properly or shows a blank window:
- Make sure all required packages are installed correctly
- Check if all image files are in the correct locations
- Verify Python and PIL/Pillow versions are compatible
- If you see "load_image" related errors, the app structure has been corrected to properly handle this

### Image handling
The application is designed to handle missing images gracefully:
- If an image file is not found, a blue placeholder is displayed
- Image references are properly maintained to prevent garbage collection
- All images should be placed in the 'assets' folder

### Layout issues
- The application uses both place and grid layout managers
- Configure the window size in the App.__init__() method if needed
- For grid layout customization, modify the grid_columnconfigure and grid_rowconfigure settings

If you still encounter issues, please check the console output for detailed error messages.
`, title)
}
