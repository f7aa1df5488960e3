package codegen

import (
	"fmt"
	"strings"

	"github.com/buildfy/backend/internal/codegen/color"
	"github.com/buildfy/backend/internal/shared/types"
)

const (
	// DefaultWindowTitle is used when the design never set a title
	DefaultWindowTitle = "My CustomTkinter Application"

	// defaultWindowBackground matches the designer's dark canvas default
	defaultWindowBackground = "#1A1A1A"

	// widgetIndent is the body indentation inside create_widgets
	widgetIndent = "        "
)

// Program assembles the complete generated source file for a design:
// imports, the App window scaffold, widget construction in ascending
// z-order (list order, invisible widgets skipped), the shared image-loading
// helper, and a guarded entry point. Output is byte-deterministic for
// structurally identical input.
func Program(widgets []types.Widget, window types.WindowProperties) string {
	title := window.Title
	if title == "" {
		title = DefaultWindowTitle
	}
	width, height := window.Size.Width, window.Size.Height
	if width <= 0 || height <= 0 {
		width, height = 800, 600
	}
	background := color.FormatOr(window.BackgroundColor, defaultWindowBackground)

	var b strings.Builder
	fmt.Fprintf(&b, `import customtkinter as ctk
from PIL import Image, ImageTk
import os
import sys
from pathlib import Path

# Try to import DateEntry for date picker components
try:
    from tkcalendar import DateEntry
except ImportError:
    DateEntry = None
    print("tkcalendar not installed. Date picker components will not work.")

class App(ctk.CTk):
    def __init__(self):
        super().__init__()

        # Set appearance mode and default color theme
        ctk.set_appearance_mode("system")  # Options: "light", "dark", "system"
        ctk.set_default_color_theme("blue")  # Options: "blue", "green", "dark-blue"

        # Configure window
        self.title("%s")
        self.geometry("%dx%d")

        # Set background color to match the design
        self.configure(fg_color="%s")

        # Create assets directory if it doesn't exist
        assets_dir = Path("assets")
        assets_dir.mkdir(exist_ok=True)

        # Store references to images to prevent garbage collection
        self._image_references = []

        # Create all widgets and components
        self.create_widgets()

    def create_widgets(self):
        """Create and place all widgets"""
`, pyString(title), width, height, background)

	visible := 0
	for _, w := range widgets {
		if !w.IsVisible() {
			continue
		}
		b.WriteString(Component(w, widgetIndent))
		b.WriteString("\n")
		visible++
	}

	if visible == 0 {
		// A design with no widgets still produces a runnable program
		b.WriteString(`        # No components found - adding sample label
        self.sample_label = ctk.CTkLabel(
            self,
            text="Hello, CustomTkinter!",
            width=200,
            height=50,
            font=("Arial", 16)
        )
        self.sample_label.place(x=300, y=275)
`)
	}

	b.WriteString(`
    def load_image(self, path, size):
        """Load an image, resize it and return as CTkImage"""
        try:
            # Handle path as string or Path object
            path_str = str(path)

            # Check if image file exists
            if os.path.exists(path_str):
                img = Image.open(path_str)
                img = img.resize(size, Image.LANCZOS if hasattr(Image, 'LANCZOS') else Image.ANTIALIAS)
                ctk_img = ctk.CTkImage(light_image=img, dark_image=img, size=size)
                self._image_references.append(ctk_img)  # Keep reference
                return ctk_img
            else:
                print(f"Image file not found: {path_str}")
                # Create a fallback colored rectangle
                img = Image.new('RGB', size, color='#3B82F6')  # Blue color as placeholder
                ctk_img = ctk.CTkImage(light_image=img, dark_image=img, size=size)
                self._image_references.append(ctk_img)
                return ctk_img
        except Exception as e:
            print(f"Error loading image '{path}': {e}")
            # Create a colored rectangle with error indication
            img = Image.new('RGB', size, color='#FF5555')  # Red color for error
            ctk_img = ctk.CTkImage(light_image=img, dark_image=img, size=size)
            self._image_references.append(ctk_img)
            return ctk_img

if __name__ == "__main__":
    try:
        app = App()
        app.mainloop()
    except Exception as e:
        print(f"Error running application: {e}")
        import traceback
        traceback.print_exc()
`)

	return b.String()
}
