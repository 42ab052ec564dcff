package tftp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RequesterTestSuite struct {
	tftpTestSuite
	conn *scriptedConnector
}

func (suite *RequesterTestSuite) SetupTest() {
	suite.conn = &scriptedConnector{}
}

func (suite *RequesterTestSuite) TestMissingFileSendsNothing() {
	missing := filepath.Join(suite.T().TempDir(), "no-such-file.txt")
	err := sendReadRequest(suite.conn, testServerAddr(), missing)
	suite.ErrorIs(err, ErrFileNotFound)
	suite.Empty(suite.conn.sent)
}

func (suite *RequesterTestSuite) TestUnreadableFileSendsNothing() {
	if os.Getuid() == 0 {
		suite.T().Skip("file permissions are not enforced for root")
	}
	unreadable := filepath.Join(suite.T().TempDir(), "locked.txt")
	suite.handleTestError(os.WriteFile(unreadable, []byte("sealed"), 0o000))

	err := sendReadRequest(suite.conn, testServerAddr(), unreadable)
	suite.ErrorIs(err, ErrPermissionDenied)
	suite.Empty(suite.conn.sent)
}

func (suite *RequesterTestSuite) TestRequestOnWire() {
	filename := filepath.Join(suite.T().TempDir(), "data.txt")
	suite.handleTestError(os.WriteFile(filename, []byte("content"), 0o644))

	remote := testServerAddr()
	err := sendReadRequest(suite.conn, remote, filename)
	suite.NoError(err)
	suite.Equal(1, len(suite.conn.sent))
	suite.Equal(createReadRequestPacket(filename), suite.conn.sent[0].data)
	suite.Equal(remote, suite.conn.sent[0].to)
}

func TestRequester(t *testing.T) {
	suite.Run(t, &RequesterTestSuite{})
}
