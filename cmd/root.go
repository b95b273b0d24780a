package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve            ServeCmd            `cmd:"" default:"1"                                            help:"Run the server"`
	Migrate          MigrateCmd          `cmd:"" help:"Run database migrations"`
	CleanImages      CleanImagesCmd      `cmd:"" help:"Find and remove images whose bottle no longer exists"`
	SeedDistilleries SeedDistilleriesCmd `cmd:"" help:"Add the common distilleries to a user's account"`
}
