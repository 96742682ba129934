package tenox

// DefaultProperties returns the built-in type table. Callers usually merge
// their own definitions on top of it.
func DefaultProperties() map[string][]string {
	return map[string][]string{
		// Spacing
		"p":  {"padding"},
		"pt": {"paddingTop"},
		"pb": {"paddingBottom"},
		"pr": {"paddingRight"},
		"pl": {"paddingLeft"},
		"ph": {"paddingLeft", "paddingRight"},
		"pv": {"paddingTop", "paddingBottom"},
		"m":  {"margin"},
		"mt": {"marginTop"},
		"mb": {"marginBottom"},
		"mr": {"marginRight"},
		"ml": {"marginLeft"},
		"mh": {"marginLeft", "marginRight"},
		"mv": {"marginTop", "marginBottom"},

		// Sizing
		"w":     {"width"},
		"h":     {"height"},
		"w-mx":  {"maxWidth"},
		"w-mn":  {"minWidth"},
		"h-mx":  {"maxHeight"},
		"h-mn":  {"minHeight"},
		"box":   {"width", "height"},
		"ratio": {"aspectRatio"},

		// Color and background
		"bg":      {"background"},
		"bgc":     {"backgroundColor"},
		"bg-size": {"backgroundSize"},
		"tc":      {"color"},
		"op":      {"opacity"},

		// Border
		"br":     {"borderRadius"},
		"bw":     {"borderWidth"},
		"bs":     {"borderStyle"},
		"bc":     {"borderColor"},
		"border": {"border"},

		// Typography
		"fs":   {"fontSize"},
		"fw":   {"fontWeight"},
		"ff":   {"fontFamily"},
		"lh":   {"lineHeight"},
		"ls":   {"letterSpacing"},
		"ta":   {"textAlign"},
		"td":   {"textDecoration"},
		"tt":   {"textTransform"},
		"ws":   {"whiteSpace"},
		"text": {"textAlign"},

		// Layout
		"d":        {"display"},
		"position": {"position"},
		"post":     {"position"},
		"t":        {"top"},
		"b":        {"bottom"},
		"r":        {"right"},
		"l":        {"left"},
		"z":        {"zIndex"},
		"over":     {"overflow"},
		"cursor":   {"cursor"},

		// Flex
		"fx":           {"flex"},
		"flex-auto":    {"flex"},
		"initial-flex": {"flex"},
		"fx-wrap":      {"flexWrap"},
		"fd":           {"flexDirection"},
		"flex-parent":  {"justifyContent", "alignItems"},
		"ai":           {"alignItems"},
		"ac":           {"alignContent"},
		"jc":           {"justifyContent"},
		"gap":          {"gap"},
		"rg":           {"rowGap"},
		"cg":           {"columnGap"},

		// Grid
		"grid-row":      {"gridTemplateRows"},
		"grid-col":      {"gridTemplateColumns"},
		"auto-grid-row": {"gridTemplateRows"},
		"auto-grid-col": {"gridTemplateColumns"},
		"grid-item-row": {"gridRow"},
		"grid-item-col": {"gridColumn"},

		// Filter
		"blur":       {TagFilter},
		"brightness": {TagFilter},
		"contrast":   {TagFilter},
		"grayscale":  {TagFilter},
		"hue-rotate": {TagFilter},
		"invert":     {TagFilter},
		"saturate":   {TagFilter},
		"sepia":      {TagFilter},

		// Backdrop filter
		"back-blur":       {TagBackdropFilter},
		"back-sepia":      {TagBackdropFilter},
		"back-saturate":   {TagBackdropFilter},
		"back-grayscale":  {TagBackdropFilter},
		"back-brightness": {TagBackdropFilter},
		"back-invert":     {TagBackdropFilter},
		"back-contrast":   {TagBackdropFilter},

		// Transform
		"translate": {TagTransform},
		"rt":        {TagTransform},
		"rotate":    {TagTransform},
		"move-x":    {TagTransform},
		"move-y":    {TagTransform},
		"move-z":    {TagTransform},
		"matrix":    {TagTransform},
		"matrix-3d": {TagTransform},
		"scale":     {TagTransform},
		"scale-3d":  {TagTransform},
		"scale-x":   {TagTransform},
		"scale-y":   {TagTransform},
		"skew-x":    {TagTransform},
		"skew-y":    {TagTransform},

		// Effects
		"shadow":     {"boxShadow"},
		"transition": {"transition"},
		"tr-time":    {"transitionDuration"},
	}
}
