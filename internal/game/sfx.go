package game

// tone is a canned sound effect.
type tone struct {
	ch     Channel
	wave   Waveform
	env    Envelope
	freq   uint16
	length uint8
}

var (
	sfxCatch = tone{ch: ChannelPulse1, wave: WaveDuty50, env: Envelope{Volume: 15, Step: -3}, freq: 1750, length: 24}
	sfxBerry = tone{ch: ChannelNoise, wave: WaveNoise, env: Envelope{Volume: 12, Step: -2}, freq: 0x50, length: 16}
)

func (t tone) play(a Audio) {
	a.PlayTone(t.ch, t.wave, t.env, t.freq, t.length)
}
