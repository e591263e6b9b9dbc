package field

// renderEra implements `G`: 1-3 abbreviated, 4 wide, 5 narrow; the
// `era=variant` option selects the locale's alternate era names (e.g.
// "CE"/"BCE") where defined.
func renderEra(ctx *Context, length int) (string, error) {
	year, month, day, err := ctx.dateFields()
	if err != nil {
		return "", err
	}
	era := ctx.Cal.EraFor(year, month, day)

	names := ctx.Calendar.Eras
	if ctx.Options.EraVariant && len(ctx.Calendar.ErasVariant.Wide) > 0 {
		names = ctx.Calendar.ErasVariant
	}
	return names.At(widthForRun(length), era), nil
}
