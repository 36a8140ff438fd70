package apps

// SettingsApp is a placeholder screen.
type SettingsApp struct{}

func (SettingsApp) Begin(env *Env) { env.Screen.Show("Settings", "Edit pin map") }
func (SettingsApp) Update(*Env)    {}
