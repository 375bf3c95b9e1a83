package safemd

// RenderOptions holds options for a single render.
type RenderOptions struct {
	Config *RenderConfig
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithConfig sets a custom RenderConfig. Options applied after it modify a
// copy, never the caller's value.
func WithConfig(config *RenderConfig) Option {
	return func(opts *RenderOptions) {
		if config == nil {
			return
		}
		cfg := *config
		opts.Config = &cfg
	}
}

// WithStrict panics on internal defects and verifies every output.
func WithStrict(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.Config.Strict = enable
	}
}

// WithSanitize runs the output through the bluemonday allow-list policy.
func WithSanitize(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.Config.Sanitize = enable
	}
}

// WithHighlight wraps code block tokens in <span class="..."> elements.
func WithHighlight(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.Config.Highlight = enable
	}
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
