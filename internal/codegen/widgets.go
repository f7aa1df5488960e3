package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/buildfy/backend/internal/shared/types"
)

// emitFunc renders one widget into a CustomTkinter source fragment.
// Fragments instantiate the widget with explicit width/height, apply the
// normalized styling, and place it at its absolute coordinate; each is
// assignable to an attribute on the shared "self" container.
type emitFunc func(id string, p PropSet, indent string) string

var emitters = map[types.WidgetType]emitFunc{
	types.TypeButton:      emitButton,
	types.TypeLabel:       emitLabel,
	types.TypeEntry:       emitEntry,
	types.TypeImage:       emitImage,
	types.TypeSlider:      emitSlider,
	types.TypeFrame:       emitFrame,
	types.TypeCheckbox:    emitCheckbox,
	types.TypeDatePicker:  emitDatePicker,
	types.TypeProgressBar: emitProgressBar,
	types.TypeTextbox:     emitTextbox,
	types.TypeParagraph:   emitParagraph,
}

// EmitWidget renders a widget fragment by type. Unknown types produce a
// marked comment fragment so one bad widget cannot abort the pass.
func EmitWidget(widgetType types.WidgetType, id string, p PropSet, indent string) string {
	if emit, ok := emitters[widgetType]; ok {
		return emit(id, p, indent)
	}
	return fmt.Sprintf("%s# Unsupported widget type: %s\n", indent, widgetType)
}

// pyString escapes a value for embedding in a double-quoted Python string
func pyString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", ``, "\t", `\t`)
	return r.Replace(s)
}

// pyNumber formats a numeric prop the way the canvas stored it: integral
// values print without a decimal point
func pyNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func place(p PropSet) string {
	return fmt.Sprintf("x=%d, y=%d", p.Position.X, p.Position.Y)
}

func emitButton(id string, p PropSet, i string) string {
	return fmt.Sprintf(`%[1]sself.%[2]s = ctk.CTkButton(
%[1]s    self,
%[1]s    text="%[3]s",
%[1]s    width=%[4]d,
%[1]s    height=%[5]d,
%[1]s    fg_color="%[6]s",
%[1]s    text_color="%[7]s",
%[1]s    hover_color="%[8]s",
%[1]s    corner_radius=%[9]d,
%[1]s    font=("%[10]s", %[11]d)
%[1]s)
%[1]sself.%[2]s.place(%[12]s)`,
		i, id,
		pyString(p.String("text", "Button")),
		p.Size.Width, p.Size.Height,
		p.Color("bgColor", "#3b82f6"),
		p.Color("fgColor", "#ffffff"),
		p.Color("hoverColor", "#2563eb"),
		p.Int("cornerRadius", 8),
		pyString(p.String("font", "Arial")),
		p.Int("fontSize", 12),
		place(p))
}

func emitLabel(id string, p PropSet, i string) string {
	bgLine := ""
	if !p.Transparent("bgColor") {
		bgLine = fmt.Sprintf("%s    fg_color=\"%s\",\n", i, p.Color("bgColor", "transparent"))
	}
	return fmt.Sprintf(`%[1]sself.%[2]s = ctk.CTkLabel(
%[1]s    self,
%[1]s    text="%[3]s",
%[1]s    width=%[4]d,
%[1]s    height=%[5]d,
%[1]s    text_color="%[6]s",
%[7]s%[1]s    font=("%[8]s", %[9]d)
%[1]s)
%[1]sself.%[2]s.place(%[10]s)`,
		i, id,
		pyString(p.String("text", "Label")),
		p.Size.Width, p.Size.Height,
		p.Color("fgColor", "#ffffff"),
		bgLine,
		pyString(p.String("font", "Arial")),
		p.Int("fontSize", 12),
		place(p))
}

func emitEntry(id string, p PropSet, i string) string {
	return fmt.Sprintf(`%[1]sself.%[2]s = ctk.CTkEntry(
%[1]s    self,
%[1]s    placeholder_text="%[3]s",
%[1]s    width=%[4]d,
%[1]s    height=%[5]d,
%[1]s    fg_color="%[6]s",
%[1]s    text_color="%[7]s",
%[1]s    border_color="%[8]s",
%[1]s    corner_radius=%[9]d,
%[1]s    font=("%[10]s", %[11]d)
%[1]s)
%[1]sself.%[2]s.place(%[12]s)`,
		i, id,
		pyString(p.String("placeholder", "")),
		p.Size.Width, p.Size.Height,
		p.Color("bgColor", "#374151"),
		p.Color("fgColor", "#ffffff"),
		p.Color("borderColor", "#6b7280"),
		p.Int("cornerRadius", 8),
		pyString(p.String("font", "Arial")),
		p.Int("fontSize", 12),
		place(p))
}

func emitImage(id string, p PropSet, i string) string {
	return fmt.Sprintf(`%[1]stry:
%[1]s    self.%[2]s_image = self.load_image("assets/%[3]s", (%[4]d, %[5]d))
%[1]s    self.%[2]s = ctk.CTkLabel(
%[1]s        self,
%[1]s        image=self.%[2]s_image,
%[1]s        text="",
%[1]s        width=%[4]d,
%[1]s        height=%[5]d,
%[1]s        fg_color="%[6]s",
%[1]s        corner_radius=%[7]d
%[1]s    )
%[1]sexcept Exception as e:
%[1]s    print(f"Error loading image: {e}")
%[1]s    # Fallback if image not found
%[1]s    self.%[2]s = ctk.CTkLabel(
%[1]s        self,
%[1]s        text="Image\nPlaceholder",
%[1]s        width=%[4]d,
%[1]s        height=%[5]d,
%[1]s        fg_color="%[6]s",
%[1]s        corner_radius=%[7]d
%[1]s    )
%[1]sself.%[2]s.place(%[8]s)`,
		i, id,
		pyString(p.String("fileName", "placeholder.png")),
		p.Size.Width, p.Size.Height,
		p.Color("bgColor", "#f3f4f6"),
		p.Int("cornerRadius", 8),
		place(p))
}

func emitSlider(id string, p PropSet, i string) string {
	return fmt.Sprintf(`%[1]sself.%[2]s = ctk.CTkSlider(
%[1]s    self,
%[1]s    from_=%[3]s,
%[1]s    to=%[4]s,
%[1]s    width=%[5]d,
%[1]s    height=%[6]d,
%[1]s    progress_color="%[7]s",
%[1]s    fg_color="%[8]s"
%[1]s)
%[1]sself.%[2]s.set(%[9]s)
%[1]sself.%[2]s.place(%[10]s)`,
		i, id,
		pyNumber(p.Float("from", 0)),
		pyNumber(p.Float("to", 100)),
		p.Size.Width, p.Size.Height,
		p.Color("progressColor", "#3b82f6"),
		p.Color("bgColor", "#374151"),
		pyNumber(p.Float("value", 50)),
		place(p))
}

func emitFrame(id string, p PropSet, i string) string {
	return fmt.Sprintf(`%[1]sself.%[2]s = ctk.CTkFrame(
%[1]s    self,
%[1]s    width=%[3]d,
%[1]s    height=%[4]d,
%[1]s    fg_color="%[5]s",
%[1]s    border_color="%[6]s",
%[1]s    border_width=%[7]d,
%[1]s    corner_radius=%[8]d
%[1]s)
%[1]sself.%[2]s.place(%[9]s)`,
		i, id,
		p.Size.Width, p.Size.Height,
		p.Color("bgColor", "#374151"),
		p.Color("borderColor", "#6b7280"),
		p.Int("borderWidth", 1),
		p.Int("cornerRadius", 8),
		place(p))
}

func emitCheckbox(id string, p PropSet, i string) string {
	selectLine := ""
	if p.Bool("checked", false) {
		selectLine = fmt.Sprintf("%sself.%s.select()\n", i, id)
	}
	return fmt.Sprintf(`%[1]sself.%[2]s = ctk.CTkCheckBox(
%[1]s    self,
%[1]s    text="%[3]s",
%[1]s    width=%[4]d,
%[1]s    height=%[5]d,
%[1]s    text_color="%[6]s",
%[1]s    fg_color="%[7]s",
%[1]s    font=("%[8]s", %[9]d)
%[1]s)
%[10]s%[1]sself.%[2]s.place(%[11]s)`,
		i, id,
		pyString(p.String("text", "Checkbox")),
		p.Size.Width, p.Size.Height,
		p.Color("fgColor", "#ffffff"),
		p.Color("checkedColor", "#3b82f6"),
		pyString(p.String("font", "Arial")),
		p.Int("fontSize", 12),
		selectLine,
		place(p))
}

// emitDatePicker defers the tkcalendar dependency check to program runtime:
// the generated code falls back to a plain label when DateEntry is missing
func emitDatePicker(id string, p PropSet, i string) string {
	return fmt.Sprintf(`%[1]sif DateEntry:
%[1]s    self.%[2]s = DateEntry(
%[1]s        self,
%[1]s        width=%[3]d,
%[1]s        background="%[4]s",
%[1]s        foreground="%[5]s",
%[1]s        borderwidth=1,
%[1]s        font=("%[6]s", %[7]d)
%[1]s    )
%[1]s    self.%[2]s.place(%[8]s)
%[1]selse:
%[1]s    self.%[2]s = ctk.CTkLabel(
%[1]s        self,
%[1]s        text="Date Picker (tkcalendar required)",
%[1]s        width=%[9]d,
%[1]s        height=%[10]d,
%[1]s        text_color="%[5]s"
%[1]s    )
%[1]s    self.%[2]s.place(%[8]s)`,
		i, id,
		p.Size.Width/10,
		p.Color("bgColor", "#ffffff"),
		p.Color("fgColor", "#000000"),
		pyString(p.String("font", "Arial")),
		p.Int("fontSize", 12),
		place(p),
		p.Size.Width, p.Size.Height)
}

func emitProgressBar(id string, p PropSet, i string) string {
	return fmt.Sprintf(`%[1]sself.%[2]s = ctk.CTkProgressBar(
%[1]s    self,
%[1]s    width=%[3]d,
%[1]s    height=%[4]d,
%[1]s    progress_color="%[5]s",
%[1]s    fg_color="%[6]s"
%[1]s)
%[1]sself.%[2]s.set(%[7]s)
%[1]sself.%[2]s.place(%[8]s)`,
		i, id,
		p.Size.Width, p.Size.Height,
		p.Color("progressColor", "#3b82f6"),
		p.Color("bgColor", "#374151"),
		pyNumber(p.Float("value", 50)/100), // CTkProgressBar takes a 0-1 fraction
		place(p))
}

func emitTextbox(id string, p PropSet, i string) string {
	content := p.String("text", "")
	if content == "" {
		content = p.String("placeholder", "Enter text here...")
	}
	return fmt.Sprintf(`%[1]sself.%[2]s = ctk.CTkTextbox(
%[1]s    self,
%[1]s    width=%[3]d,
%[1]s    height=%[4]d,
%[1]s    fg_color="%[5]s",
%[1]s    text_color="%[6]s",
%[1]s    border_color="%[7]s",
%[1]s    corner_radius=%[8]d,
%[1]s    font=("%[9]s", %[10]d)
%[1]s)
%[1]sself.%[2]s.insert("1.0", "%[11]s")
%[1]sself.%[2]s.place(%[12]s)`,
		i, id,
		p.Size.Width, p.Size.Height,
		p.Color("bgColor", "#374151"),
		p.Color("fgColor", "#ffffff"),
		p.Color("borderColor", "#6b7280"),
		p.Int("cornerRadius", 8),
		pyString(p.String("font", "Arial")),
		p.Int("fontSize", 12),
		pyString(content),
		place(p))
}

func emitParagraph(id string, p PropSet, i string) string {
	bgLine := ""
	if !p.Transparent("bgColor") {
		bgLine = fmt.Sprintf("%s    fg_color=\"%s\",\n", i, p.Color("bgColor", "transparent"))
	}
	return fmt.Sprintf(`%[1]sself.%[2]s = ctk.CTkLabel(
%[1]s    self,
%[1]s    text="%[3]s",
%[1]s    width=%[4]d,
%[1]s    height=%[5]d,
%[1]s    text_color="%[6]s",
%[7]s%[1]s    font=("%[8]s", %[9]d),
%[1]s    wraplength=%[10]d,
%[1]s    anchor="nw",
%[1]s    justify="left"
%[1]s)
%[1]sself.%[2]s.place(%[11]s)`,
		i, id,
		pyString(p.String("text", "Paragraph text goes here.")),
		p.Size.Width, p.Size.Height,
		p.Color("fgColor", "#ffffff"),
		bgLine,
		pyString(p.String("font", "Arial")),
		p.Int("fontSize", 12),
		p.Size.Width-20, // wrap just inside the widget padding
		place(p))
}
