package config

const configTemplate = `# entercaptcha configuration file
# Every key can also be set with an ENTERCAPTCHA_<KEY> environment variable
# or the matching command-line flag.

# Pause before typing so the target window can take focus.
# Go durations ("2s", "1500ms") or plain seconds (2, 0.5).
delay: 2s

# Pause between keystrokes.
interval: 50ms

# Key pressed after the text: enter, tab, escape, space or none.
submit_key: enter

# Only type when the focused window title contains this text (case-insensitive).
# window_filter: Terminal

# Keystroke backend: auto, xdotool, wtype (Wayland) or osascript (macOS).
backend: auto

# Observability settings
log_level: warn  # debug, info, warn, error
`
