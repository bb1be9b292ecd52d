package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/db"
	adminUC "newsdesk/internal/usecase/admin"
)

type createUserCmd struct {
	Email    string `long:"email" required:"true" description:"Login email"`
	Password string `long:"password" required:"true" description:"Plain password, stored as bcrypt"`
	Name     string `long:"name" description:"Display name"`
	Role     string `long:"role" default:"admin" choice:"admin" choice:"editor" choice:"author" description:"Role"`
}

func (c *createUserCmd) Execute([]string) error {
	u, created, err := app.svc.CreateUser(app.ctx, adminUC.UserInput{
		Email:    c.Email,
		Password: c.Password,
		Name:     c.Name,
		Role:     entity.Role(c.Role),
	})
	if err != nil {
		return err
	}
	verb := "updated"
	if created {
		verb = "created"
	}
	_, err = fmt.Fprintf(app.out, "%s user %d <%s> role=%s\n", verb, u.ID, u.Email, u.Role)
	return err
}

type listUsersCmd struct{}

func (c *listUsersCmd) Execute([]string) error {
	users, err := app.svc.ListUsers(app.ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10), u.Email, u.Name, string(u.Role), u.CreatedAt.Format("2006-01-02"),
		})
	}
	return printTable(app.out, []string{"id", "email", "name", "role", "created"}, rows)
}

type seedCategoriesCmd struct{}

func (c *seedCategoriesCmd) Execute([]string) error {
	n, err := app.svc.SeedCategories(app.ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.out, "inserted %d categories\n", n)
	return err
}

type resetArticleFlagsCmd struct{}

func (c *resetArticleFlagsCmd) Execute([]string) error {
	n, err := app.svc.ResetArticleFlags(app.ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.out, "reset flags on %d articles\n", n)
	return err
}

type deleteArticlesCmd struct {
	IDs []int64 `long:"id" required:"true" description:"Article id (repeatable)"`
}

func (c *deleteArticlesCmd) Execute([]string) error {
	deleted, missing, err := app.svc.DeleteArticles(app.ctx, c.IDs)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		fmt.Fprintf(app.out, "not found: %v\n", missing)
	}
	_, err = fmt.Fprintf(app.out, "deleted %d articles\n", deleted)
	return err
}

type purgeAuctionsCmd struct {
	Yes bool `long:"yes" description:"Skip the confirmation check"`
}

func (c *purgeAuctionsCmd) Execute([]string) error {
	if !c.Yes {
		return fmt.Errorf("purge-auctions deletes every auction and bid; rerun with --yes")
	}
	n, err := app.svc.PurgeAuctions(app.ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.out, "deleted %d auctions\n", n)
	return err
}

type closeAuctionsCmd struct{}

func (c *closeAuctionsCmd) Execute([]string) error {
	n, err := app.svc.CloseAuctions(app.ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.out, "closed %d auctions\n", n)
	return err
}

type statsCmd struct {
	YAML bool `long:"yaml" description:"Print as YAML"`
}

func (c *statsCmd) Execute([]string) error {
	st, err := app.svc.Stats(app.ctx)
	if err != nil {
		return err
	}
	if c.YAML {
		enc := yaml.NewEncoder(app.out)
		defer enc.Close()
		return enc.Encode(st)
	}

	statuses := make([]string, 0, len(st.Articles))
	for s := range st.Articles {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)

	rows := make([][]string, 0, len(statuses)+2)
	for _, s := range statuses {
		rows = append(rows, []string{"articles (" + s + ")", strconv.FormatInt(st.Articles[entity.ArticleStatus(s)], 10)})
	}
	rows = append(rows,
		[]string{"users", strconv.FormatInt(st.Users, 10)},
		[]string{"categories", strconv.FormatInt(st.Categories, 10)},
	)
	return printTable(app.out, []string{"table", "rows"}, rows)
}

type exportCmd struct {
	Out string `long:"out" short:"o" required:"true" description:"Destination file (.json, .yaml or .yml)"`
}

func (c *exportCmd) Execute([]string) (err error) {
	format, err := adminUC.FormatFromPath(c.Out)
	if err != nil {
		return err
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.Out, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	doc, err := app.svc.Export(app.ctx, f, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.out, "exported %d users, %d categories, %d articles, %d ads, %d advertisements, %d auctions to %s\n",
		len(doc.Users), len(doc.Categories), len(doc.Articles), len(doc.Ads), len(doc.Advertisements), len(doc.Auctions), c.Out)
	return err
}

type importCmd struct {
	In string `long:"in" short:"i" required:"true" description:"Source file (.json, .yaml or .yml)"`
}

func (c *importCmd) Execute([]string) error {
	format, err := adminUC.FormatFromPath(c.In)
	if err != nil {
		return err
	}
	f, err := os.Open(c.In)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.In, err)
	}
	defer f.Close()

	doc, err := app.svc.Import(app.ctx, f, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.out, "imported %d users, %d categories, %d articles, %d ads, %d advertisements, %d auctions\n",
		len(doc.Users), len(doc.Categories), len(doc.Articles), len(doc.Ads), len(doc.Advertisements), len(doc.Auctions))
	return err
}

type migrateCmd struct {
	Down int `long:"down" description:"Roll back this many migrations instead of applying"`
}

func (c *migrateCmd) Execute([]string) error {
	if c.Down > 0 {
		if err := db.MigrateDown(app.db, c.Down); err != nil {
			return err
		}
		_, err := fmt.Fprintf(app.out, "rolled back %d migrations\n", c.Down)
		return err
	}
	version, err := db.MigrateUp(app.db)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.out, "schema at version %d\n", version)
	return err
}
