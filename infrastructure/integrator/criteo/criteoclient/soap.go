package criteoclient

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	apiNamespace  = "https://advertising.criteo.com/API/v201010"
	clientVersion = "criteo-performance-downloader"
)

const envelopeFormat = `<?xml version="1.0" encoding="utf-8"?>` +
	`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
	`<soap:Header>%s</soap:Header><soap:Body>%s</soap:Body></soap:Envelope>`

// apiHeader authenticates every call after clientLogin.
type apiHeader struct {
	XMLName       xml.Name `xml:"apiHeader"`
	Xmlns         string   `xml:"xmlns,attr"`
	AuthToken     string   `xml:"authToken"`
	AppToken      string   `xml:"appToken"`
	ClientVersion string   `xml:"clientVersion"`
}

type responseEnvelope struct {
	Body struct {
		Inner []byte `xml:",innerxml"`
	} `xml:"Body"`
}

type soapFault struct {
	XMLName     xml.Name `xml:"Fault"`
	FaultCode   string   `xml:"faultcode"`
	FaultString string   `xml:"faultstring"`
}

// clientLoginRequest is the only call made without an apiHeader.
type clientLoginRequest struct {
	XMLName  xml.Name `xml:"clientLogin"`
	Xmlns    string   `xml:"xmlns,attr"`
	Username string   `xml:"username"`
	Password string   `xml:"password"`
	Source   string   `xml:"source"`
}

type clientLoginResponse struct {
	XMLName xml.Name `xml:"clientLoginResponse"`
	Result  string   `xml:"clientLoginResult"`
}

func (c *CriteoClient) clientLogin() (string, error) {
	request := clientLoginRequest{
		Xmlns:    apiNamespace,
		Username: c.Account.Username,
		Password: c.Account.Password,
		Source:   clientVersion,
	}

	var response clientLoginResponse
	if err := c.post("clientLogin", "", request, &response); err != nil {
		return "", errors.Wrapf(err, "logging in account %s", c.Account.NormalizedName)
	}

	if response.Result == "" {
		return "", errors.Errorf("empty auth token for account %s", c.Account.NormalizedName)
	}

	return response.Result, nil
}

// call authenticates if needed and performs one SOAP operation.
func (c *CriteoClient) call(action string, request, response interface{}) error {
	authToken, err := c.ensureAuthenticated()
	if err != nil {
		return err
	}

	header, err := xml.Marshal(apiHeader{
		Xmlns:         apiNamespace,
		AuthToken:     authToken,
		AppToken:      c.Account.Token,
		ClientVersion: clientVersion,
	})
	if err != nil {
		return errors.Wrap(err, "encoding api header")
	}

	return c.post(action, string(header), request, response)
}

func (c *CriteoClient) post(action, header string, request, response interface{}) error {
	body, err := xml.Marshal(request)
	if err != nil {
		return errors.Wrapf(err, "encoding %s request", action)
	}

	payload := fmt.Sprintf(envelopeFormat, header, body)

	if err := c.limiter.Wait(context.Background()); err != nil {
		return errors.Wrap(err, "waiting for rate limiter")
	}

	req, err := http.NewRequest(http.MethodPost, c.Cfg.Criteo.URL, bytes.NewBufferString(payload))
	if err != nil {
		return errors.Wrapf(err, "creating %s request", action)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", apiNamespace+"/"+action)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("action", action).Error("criteo API request failed")
		return errors.Wrapf(err, "calling %s", action)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s response", action)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("%s returned status %d: %s", action, resp.StatusCode, truncateForLog(raw))
	}

	var envelope responseEnvelope
	if err := xml.Unmarshal(raw, &envelope); err != nil {
		return errors.Wrapf(err, "decoding %s envelope", action)
	}

	var fault soapFault
	if err := xml.Unmarshal(envelope.Body.Inner, &fault); err == nil && fault.FaultString != "" {
		return errors.Errorf("%s fault: %s", action, fault.FaultString)
	}

	if err := xml.Unmarshal(envelope.Body.Inner, response); err != nil {
		return errors.Wrapf(err, "decoding %s response", action)
	}

	return nil
}

func truncateForLog(raw []byte) string {
	const max = 512
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
