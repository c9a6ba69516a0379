package nationallottery

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"lottowatch-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/nationallottery")

// meta tag name suffixes, the full name is `{game_id}-{property}`
const (
	propNextDrawDate = "next-draw-date"
	propNextDrawDay  = "next-draw-day"
	propPrice        = "price"
	propRollCount    = "roll-count"
	propJackpot      = "next-draw-jackpot"
	propJackpotShort = "next-draw-jackpot-short"
)

// ParseGamesPage extracts a RawFieldSet for every tracked game from the
// games page html. Every tracked id is present in the result, games the
// page says nothing about map to an empty field set. The page embeds its
// data twice, once as meta tags and once in the game container markup,
// the latter wins when both carry a field.
func ParseGamesPage(ctx context.Context, content string) (map[GameID]RawFieldSet, error) {
	ctx, span := tracer.Start(ctx, "ParseGamesPage")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse games page html")
		return nil, err
	}

	games := make(map[GameID]RawFieldSet, len(TrackedGames()))
	for _, id := range TrackedGames() {
		games[id] = extractMeta(ctx, doc, id)
	}
	extractContent(ctx, doc, games)

	return games, nil
}

func metaContent(doc *goquery.Document, id GameID, property string) (string, bool) {
	name := fmt.Sprintf("%s-%s", id, property)
	sel := doc.Find(fmt.Sprintf(`meta[name=%q]`, name))
	if sel.Length() == 0 {
		return "", false
	}
	content, ok := sel.First().Attr("content")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(content), true
}

func extractMeta(ctx context.Context, doc *goquery.Document, id GameID) RawFieldSet {
	fields := RawFieldSet{DisplayName: DisplayNames[id]}

	if raw, ok := metaContent(doc, id, propNextDrawDate); ok {
		date, err := ParseDrawDate(raw)
		if err != nil {
			slog.WarnContext(ctx, "skipping bad draw date", "game", id, "raw", raw)
		} else {
			fields.DrawDate = &date
		}
	}
	if raw, ok := metaContent(doc, id, propNextDrawDay); ok {
		fields.DrawDay = raw
	}
	if raw, ok := metaContent(doc, id, propPrice); ok && raw != "" {
		fields.Price = "£" + raw
	}
	if raw, ok := metaContent(doc, id, propRollCount); ok {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			slog.WarnContext(ctx, "skipping bad roll count", "game", id, "raw", raw)
		} else if count > 0 {
			// the page reports 0 for games without a rollover counter
			fields.RollCount = &count
		}
	}
	if raw, ok := metaContent(doc, id, propJackpot); ok {
		amount := ParseJackpot(raw)
		if !amount.Ok {
			slog.WarnContext(ctx, "could not normalize jackpot", "game", id, "raw", raw)
		}
		fields.Jackpot = &amount
	}
	if raw, ok := metaContent(doc, id, propJackpotShort); ok {
		fields.JackpotShort = raw
	}

	return fields
}

// draw amounts on the page carry footnote markers
var footnoteMarkers = regexp.MustCompile(`[*Δ]`)

func extractContent(ctx context.Context, doc *goquery.Document, games map[GameID]RawFieldSet) {
	doc.Find("div.cuk_all_games_container").Each(func(_ int, container *goquery.Selection) {
		brand := container.Find("h2.game_brand span.game_brand_text").First()
		if len(brand.Nodes) == 0 {
			return
		}
		name := htmlutil.CleanText(htmlutil.GetText(brand.Nodes[0]))
		id, ok := MatchGameID(name)
		if !ok {
			slog.DebugContext(ctx, "unrecognized game container", "name", name)
			return
		}

		fields := games[id]
		fields.DisplayName = name

		drawInfo := container.Find("div.draw_information").First()
		if drawInfo.Length() > 0 {
			headline := drawInfo.Find("span.headline").First()
			if headline.Length() == 0 {
				headline = drawInfo.Find("span.headline-1").First()
			}
			if text := htmlutil.CleanText(headline.Text()); text != "" {
				fields.DrawDay = text
			}

			amountText := htmlutil.CleanText(drawInfo.Find("span.amount").First().Text())
			amountText = footnoteMarkers.ReplaceAllString(amountText, "")
			if amountText != "" {
				amount := ParseJackpot(amountText)
				if !amount.Ok {
					slog.WarnContext(ctx, "could not normalize jackpot", "game", id, "raw", amountText)
				}
				fields.Jackpot = &amount
			}
		}

		gameInfo := container.Find("div.game_information").First()
		if gameInfo.Length() > 0 {
			if text := htmlutil.CleanText(gameInfo.Find("span.amount").First().Text()); text != "" {
				fields.Price = text
			}
			if text := htmlutil.CleanText(gameInfo.Find("p.panel-copy").First().Text()); text != "" {
				fields.DrawDays = text
			}
		}

		games[id] = fields
	})
}
