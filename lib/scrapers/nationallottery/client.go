package nationallottery

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"lottowatch-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	browser "github.com/EDDYCJY/fake-useragent"
	"github.com/go-resty/resty/v2"
)

const DefaultGamesUrl = "https://www.national-lottery.co.uk/games"

// HttpSource retrieves the games page over HTTP.
type HttpSource struct {
	http *resty.Client
	url  string
}

// NewHttpSource builds a Source for the given page url, or
// DefaultGamesUrl when empty.
func NewHttpSource(pageUrl string) (HttpSource, error) {
	if pageUrl == "" {
		pageUrl = DefaultGamesUrl
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return HttpSource{}, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", browser.Chrome())
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/nationallottery/http")

	return HttpSource{
		http: client,
		url:  pageUrl,
	}, nil
}

func (s HttpSource) Get(ctx context.Context) (string, error) {
	res, err := s.http.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("games page returned %s", res.Status())
	}
	return res.String(), nil
}
