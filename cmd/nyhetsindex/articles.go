package main

import (
	"fmt"

	"github.com/fwojciec/nyhetsindex"
)

// Run executes the articles command.
func (c *ArticlesCmd) Run(deps *Dependencies) error {
	filter := nyhetsindex.ArticleFilter{Limit: c.Limit}
	if c.RunID != "" {
		filter.RunID = &c.RunID
	}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nyhetsindex.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived articles. Use 'nyhetsindex scrape' to create a run.")
		return nil
	}

	for _, a := range articles {
		date := a.Date
		if date == "" {
			date = "----------"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", a.ScrapedAt.Format("2006-01-02"), date, a.Title, a.URL)
	}

	return nil
}
